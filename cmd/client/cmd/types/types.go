package types

type contextKey string

// ClientAppKey indexa a instância do cliente no contexto dos comandos
const ClientAppKey contextKey = "app"
