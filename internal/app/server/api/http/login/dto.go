package login

type loginInput struct {
	Body *loginRequest
}

// Fields are deliberately schema-optional: presence and format are judged by
// the domain validators so the failure messages stay canonical.
type loginRequest struct {
	Email    string `json:"email,omitempty" doc:"Email no formato email@email.com"`
	Password string `json:"password,omitempty" doc:"Senha com pelo menos 6 caracteres"`
}

type loginOutput struct {
	Body tokenResponse
}

type tokenResponse struct {
	Token string `json:"token" example:"7mqavrrbvheuqcra" doc:"Token de acesso de 16 caracteres"`
}
