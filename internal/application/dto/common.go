package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Itens já aplicados num commit parcial, para o cliente reenviar só o
	// restante. Vazio fora do caso parcial.
	Aplicados []string `json:"aplicados,omitempty"`
}
