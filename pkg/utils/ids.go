package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// Prefixos usados pelos identificadores gerados no cliente
const (
	PrefixWeek  = "week-"
	PrefixBatch = "batch_"
	PrefixSale  = "sale_"
	PrefixRow   = "row_"
)

// NewID gera um identificador estável para uma entidade criada no cliente.
// O identificador nunca é reatribuído pelo servidor.
func NewID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}

// MustNewID é como NewID, mas entra em pânico se o gerador falhar
func MustNewID(prefix string) string {
	id, err := NewID(prefix)
	if err != nil {
		panic(err)
	}
	return id
}
