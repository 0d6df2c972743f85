package api

import "github.com/example/expedicoes/internal/ports/primary"

// missionResponse is the wire shape of a mission. Optional fields are always
// present and encode as null when unset.
type missionResponse struct {
	ID              int64    `json:"id"`
	Nome            string   `json:"nome"`
	DataLancamento  string   `json:"data_lancamento"`
	Destino         string   `json:"destino"`
	EstadoMissao    string   `json:"estado_missao"`
	Tripulacao      *string  `json:"tripulacao"`
	CargaUtil       *string  `json:"carga_util"`
	Duracao         *string  `json:"duracao"`
	Custo           *float64 `json:"custo"`
	StatusDetalhado *string  `json:"status_detalhado"`
}

func serializeMission(m *primary.Mission) missionResponse {
	return missionResponse{
		ID:              m.ID,
		Nome:            m.Name,
		DataLancamento:  m.LaunchDate,
		Destino:         m.Destination,
		EstadoMissao:    m.State,
		Tripulacao:      m.Crew,
		CargaUtil:       m.Payload,
		Duracao:         m.Duration,
		Custo:           m.Cost,
		StatusDetalhado: m.DetailedStatus,
	}
}

// serializeMissions never returns nil so an empty result encodes as [].
func serializeMissions(ms []*primary.Mission) []missionResponse {
	out := make([]missionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, serializeMission(m))
	}
	return out
}
