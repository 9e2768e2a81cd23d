package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/database"
)

func TestExportClientsCSV(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	repo.On("CountClientsByStatus", ctx).Return(map[string]int{
		entity.ClientStatusProspect:  2,
		entity.ClientStatusActive:    2,
		entity.ClientStatusCompleted: 1,
	}, nil)

	uc := NewExportUseCase(repo)

	result, err := uc.Export(ctx, ReportClients, FormatCSV)

	assert.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.Contains(t, result.Filename, "relatorio_clients_")

	body := string(result.Body)
	// BOM para o Excel abrir o UTF-8 direito
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(body, "\uFEFF")), "\n")
	assert.Equal(t, "Métrica,Valor", lines[0])
	assert.Equal(t, `"Total de Clientes","5"`, lines[1])
	assert.Equal(t, `"Prospects","2"`, lines[2])
}

func TestExportFinancialJSON(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	repo.On("FinancialTotals", ctx).Return(database.FinancialTotals{
		PixPaid:      decimal.RequireFromString("1500.00"),
		PixPending:   decimal.RequireFromString("300.00"),
		CardApproved: decimal.RequireFromString("900.00"),
	}, nil)

	uc := NewExportUseCase(repo)

	result, err := uc.Export(ctx, ReportFinancial, FormatJSON)

	assert.NoError(t, err)
	assert.Equal(t, "application/json; charset=utf-8", result.ContentType)

	// Pretty print de dois espaços
	assert.Contains(t, string(result.Body), "\n  \"title\"")

	var payload struct {
		Title   string     `json:"title"`
		Headers []string   `json:"headers"`
		Rows    [][]string `json:"rows"`
		Source  string     `json:"source"`
	}
	assert.NoError(t, json.Unmarshal(result.Body, &payload))
	assert.Equal(t, "Relatório Financeiro", payload.Title)
	assert.Equal(t, []string{"Métrica", "Valor"}, payload.Headers)
	assert.Equal(t, SourceLive, payload.Source)
	assert.Contains(t, payload.Rows, []string{"Total Recebido", "R$ 2400.00"})
}

func TestExportPDFIsPrintableHTML(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	repo.On("CountMentorshipsByStatus", ctx).Return(map[string]int{
		entity.MentorshipStatusInProgress: 3,
	}, nil)

	uc := NewExportUseCase(repo)

	result, err := uc.Export(ctx, ReportMentorships, FormatPDF)

	assert.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", result.ContentType)
	assert.Contains(t, string(result.Body), "<table>")
	assert.Contains(t, string(result.Body), "Relatório de Mentorias")
}

func TestExportInvalidFormat(t *testing.T) {
	uc := NewExportUseCase(new(MockReportRepository))

	result, err := uc.Export(context.Background(), ReportClients, "xlsx")

	assert.Nil(t, result)
	assert.True(t, IsDomainError(err))
}

func TestExportUnknownReport(t *testing.T) {
	uc := NewExportUseCase(new(MockReportRepository))

	result, err := uc.Export(context.Background(), "leads", FormatCSV)

	assert.Nil(t, result)
	assert.True(t, IsDomainError(err))
}

// Banco fora do ar degrada para o último snapshot bom, marcado como tal.
func TestExportFallsBackToSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	repo.On("CountClientsByStatus", ctx).Return(map[string]int{
		entity.ClientStatusActive: 4,
	}, nil).Once()
	repo.On("CountClientsByStatus", ctx).Return(nil, errors.New("connection refused"))

	uc := NewExportUseCase(repo)

	first, err := uc.Export(ctx, ReportClients, FormatCSV)
	assert.NoError(t, err)
	assert.Equal(t, SourceLive, first.Source)

	second, err := uc.Export(ctx, ReportClients, FormatCSV)
	assert.NoError(t, err)
	assert.Equal(t, SourceSnapshot, second.Source)
	assert.Contains(t, string(second.Body), `"Clientes Ativos","4"`)
}

// Sem snapshot anterior, a falha sobe como erro técnico.
func TestExportNoSnapshotFails(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportRepository)
	repo.On("CountClientsByStatus", ctx).Return(nil, errors.New("connection refused"))

	uc := NewExportUseCase(repo)

	result, err := uc.Export(ctx, ReportClients, FormatCSV)

	assert.Nil(t, result)
	assert.True(t, IsTechnicalError(err))
}
