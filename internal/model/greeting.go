package model

// ModuleNames reports the names of the demo modules linked into the server.
type ModuleNames struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Greeting is the response body of the root endpoint.
type Greeting struct {
	Message string      `json:"message"`
	Random  int         `json:"random"`
	Modules ModuleNames `json:"modules"`
}
