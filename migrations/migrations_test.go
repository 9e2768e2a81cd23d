package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitSchema(t *testing.T) {
	raw, err := FS.ReadFile("00001_init.sql")
	assert.NoError(t, err)

	schema := string(raw)

	// Cliente removido não derruba mentorias nem serviços: a FK zera e
	// a listagem exibe "Unknown Client".
	assert.Equal(t, 2, strings.Count(schema, "ON DELETE SET NULL"))
	assert.NotContains(t, schema, "client_id   UUID NOT NULL")
	assert.NotContains(t, schema, "client_id    UUID NOT NULL")

	// Portal nasce com os episódios publicados do Conecta Cast.
	assert.Contains(t, schema, "INSERT INTO podcast_episodes")
	assert.Contains(t, schema, "Minha jornada em RH - Com Patricia Rocha")
	assert.Contains(t, schema, "Uma Ponte para Você - Com Nivea Oliveira")
	assert.Contains(t, schema, "Até onde as conexões podem nos levar? - Com Janine Alcure e Andréia Xavier")

	// Categorias de iniciativa continuam vindo do banco
	assert.Contains(t, schema, "INSERT INTO initiative_categories")
}
