package talker

import "talkerbase/internal/domain/fault"

var ErrNotFound = &fault.Error{Kind: fault.NotFound, Message: "Pessoa palestrante não encontrada"}
