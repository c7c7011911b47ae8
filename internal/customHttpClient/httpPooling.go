package customHttpClient

import (
	"net/http"

	"github.com/akolanti/BrainAPI/internal/config"
)

//shared outbound client so the llm providers reuse connections instead of
//paying the handshake on every request

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{
	Transport: customTransport,
	Timeout:   config.LLMRequestTimeout,
}

func PooledClient() *http.Client {
	return pooledClient
}
