package talker

import (
	"talkerbase/internal/domain/talker"
)

type listOutput struct {
	Body []talker.Talker
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"ID da pessoa palestrante"`
}

type findOutput struct {
	Body talker.Talker
}

// writeRequest is the body of create and update. Every field is
// schema-optional on purpose: presence is judged by the validation pipeline
// so the failure messages and their order stay canonical. Age and rate stay
// untyped so a non-numeric value reaches the pipeline's "número inteiro"
// rules instead of dying in the decoder.
type writeRequest struct {
	Name string       `json:"name,omitempty" doc:"Nome com pelo menos 3 caracteres"`
	Age  any          `json:"age,omitempty" doc:"Idade, número inteiro igual ou maior que 18"`
	Talk *talkRequest `json:"talk,omitempty"`
}

type talkRequest struct {
	WatchedAt string `json:"watchedAt,omitempty" doc:"Data no formato dd/mm/aaaa"`
	Rate      any    `json:"rate,omitempty" doc:"Nota, número inteiro entre 1 e 5"`
}

// payload flattens the request into the pipeline's transport-free shape. A
// nil body validates like an empty one.
func (r *writeRequest) payload(token string) talker.Payload {
	p := talker.Payload{Token: token}
	if r == nil {
		return p
	}
	p.Name = r.Name
	p.Age = r.Age
	if r.Talk != nil {
		p.Talk = &talker.TalkPayload{
			WatchedAt: r.Talk.WatchedAt,
			Rate:      r.Talk.Rate,
		}
	}
	return p
}

type createInput struct {
	Authorization string `header:"Authorization" doc:"Token de acesso de 16 caracteres"`
	Body          *writeRequest
}

type createOutput struct {
	Body talker.Talker
}

type updateInput struct {
	ID            int    `path:"id" example:"1" doc:"ID da pessoa palestrante"`
	Authorization string `header:"Authorization" doc:"Token de acesso de 16 caracteres"`
	Body          *writeRequest
}

type updateOutput struct {
	Body talker.Talker
}

type deleteInput struct {
	ID            int    `path:"id" example:"1" doc:"ID da pessoa palestrante"`
	Authorization string `header:"Authorization" doc:"Token de acesso de 16 caracteres"`
}

type deleteOutput struct{}
