package api

// Client-facing messages. These strings are part of the wire contract.
const (
	msgNotFound        = "Missão não encontrada"
	msgProcessingError = "Erro ao processar a requisição"
	msgMissingDates    = "Por favor, forneça as datas de início e fim."
	msgBadDateFormat   = "As datas devem estar no formato YYYY-MM-DD."
	msgDeleted         = "Missão excluída com sucesso"
	msgTooManyRequests = "Muitas requisições"
	msgInvalidRequest  = "Requisição inválida"
)
