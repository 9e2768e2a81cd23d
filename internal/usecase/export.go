package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/anaconecta/conecta-api/internal/entity"
	"github.com/anaconecta/conecta-api/internal/infra/database"
)

// Relatórios disponíveis para exportação
const (
	ReportClients     = "clients"
	ReportMentorships = "mentorships"
	ReportFinancial   = "financial"
	ReportAnalytics   = "analytics"
)

// Formatos de saída
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Origem dos dados do export
const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
)

type ReportTable struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ExportResult carrega o corpo pronto para download. Source indica se
// os números vieram do banco agora (live) ou do último resultado bom
// conhecido (snapshot), para que saída degradada seja distinguível.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
	Source      string
}

type ExportUseCase struct {
	Repo ReportRepository

	mu        sync.Mutex
	snapshots map[string]ReportTable
}

func NewExportUseCase(repo ReportRepository) *ExportUseCase {
	return &ExportUseCase{
		Repo:      repo,
		snapshots: map[string]ReportTable{},
	}
}

func (uc *ExportUseCase) Export(ctx context.Context, report, format string) (*ExportResult, error) {
	if format != FormatCSV && format != FormatJSON && format != FormatPDF {
		return nil, &DomainError{Code: "INVALID_FORMAT", Message: "format must be csv, json or pdf"}
	}

	table, source, err := uc.buildTable(ctx, report)
	if err != nil {
		return nil, err
	}

	date := time.Now().Format("2006-01-02")
	base := fmt.Sprintf("relatorio_%s_%s", report, date)

	switch format {
	case FormatCSV:
		return &ExportResult{
			Filename:    base + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Body:        renderCSV(table),
			Source:      source,
		}, nil
	case FormatJSON:
		body, err := renderJSON(table, source)
		if err != nil {
			return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: "failed to encode report: " + err.Error()}
		}
		return &ExportResult{
			Filename:    base + ".json",
			ContentType: "application/json; charset=utf-8",
			Body:        body,
			Source:      source,
		}, nil
	default:
		body, err := renderPrintableHTML(table, source)
		if err != nil {
			return nil, &TechnicalError{Code: "EXPORT_ERROR", Message: "failed to render report: " + err.Error()}
		}
		return &ExportResult{
			Filename:    base + ".html",
			ContentType: "text/html; charset=utf-8",
			Body:        body,
			Source:      source,
		}, nil
	}
}

// buildTable monta a tabela ao vivo; se o banco falhar e existir um
// snapshot anterior do mesmo relatório, devolve o snapshot marcado.
func (uc *ExportUseCase) buildTable(ctx context.Context, report string) (ReportTable, string, error) {
	var (
		table ReportTable
		err   error
	)

	switch report {
	case ReportClients:
		table, err = uc.clientsTable(ctx)
	case ReportMentorships:
		table, err = uc.mentorshipsTable(ctx)
	case ReportFinancial:
		table, err = uc.financialTable(ctx)
	case ReportAnalytics:
		table, err = uc.analyticsTable(ctx)
	default:
		return ReportTable{}, "", &DomainError{Code: "INVALID_REPORT", Message: "unknown report: " + report}
	}

	if err != nil {
		uc.mu.Lock()
		snapshot, ok := uc.snapshots[report]
		uc.mu.Unlock()
		if ok {
			log.Printf("⚠️ Relatório %s degradado para snapshot: %v", report, err)
			return snapshot, SourceSnapshot, nil
		}
		return ReportTable{}, "", &TechnicalError{Code: "REPORT_ERROR", Message: "failed to build report: " + err.Error()}
	}

	uc.mu.Lock()
	uc.snapshots[report] = table
	uc.mu.Unlock()

	return table, SourceLive, nil
}

func (uc *ExportUseCase) clientsTable(ctx context.Context) (ReportTable, error) {
	counts, err := uc.Repo.CountClientsByStatus(ctx)
	if err != nil {
		return ReportTable{}, err
	}

	return metricTable("Relatório de Clientes", [][2]string{
		{"Total de Clientes", itoa(sumCounts(counts))},
		{"Prospects", itoa(counts[entity.ClientStatusProspect])},
		{"Clientes Ativos", itoa(counts[entity.ClientStatusActive])},
		{"Clientes Concluídos", itoa(counts[entity.ClientStatusCompleted])},
	}), nil
}

func (uc *ExportUseCase) mentorshipsTable(ctx context.Context) (ReportTable, error) {
	counts, err := uc.Repo.CountMentorshipsByStatus(ctx)
	if err != nil {
		return ReportTable{}, err
	}

	return metricTable("Relatório de Mentorias", [][2]string{
		{"Total de Mentorias", itoa(sumCounts(counts))},
		{"Contato Inicial", itoa(counts[entity.MentorshipStatusInitialContact])},
		{"Proposta Enviada", itoa(counts[entity.MentorshipStatusProposalSent])},
		{"Contrato Assinado", itoa(counts[entity.MentorshipStatusContractSigned])},
		{"Em Andamento", itoa(counts[entity.MentorshipStatusInProgress])},
		{"Concluídas", itoa(counts[entity.MentorshipStatusCompleted])},
	}), nil
}

func (uc *ExportUseCase) financialTable(ctx context.Context) (ReportTable, error) {
	totals, err := uc.Repo.FinancialTotals(ctx)
	if err != nil {
		return ReportTable{}, err
	}

	return metricTable("Relatório Financeiro", financialRows(totals)), nil
}

func (uc *ExportUseCase) analyticsTable(ctx context.Context) (ReportTable, error) {
	clients, err := uc.Repo.CountClientsByStatus(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	mentorships, err := uc.Repo.CountMentorshipsByStatus(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	initiatives, err := uc.Repo.CountInitiativesByStatus(ctx)
	if err != nil {
		return ReportTable{}, err
	}
	totals, err := uc.Repo.FinancialTotals(ctx)
	if err != nil {
		return ReportTable{}, err
	}

	rows := [][2]string{
		{"Total de Clientes", itoa(sumCounts(clients))},
		{"Clientes Ativos", itoa(clients[entity.ClientStatusActive])},
		{"Total de Mentorias", itoa(sumCounts(mentorships))},
		{"Mentorias em Andamento", itoa(mentorships[entity.MentorshipStatusInProgress])},
		{"Total de Iniciativas", itoa(sumCounts(initiatives))},
		{"Iniciativas Concluídas", itoa(initiatives[entity.InitiativeStatusCompleted])},
	}
	rows = append(rows, financialRows(totals)...)

	return metricTable("Relatório Analítico", rows), nil
}

func financialRows(totals database.FinancialTotals) [][2]string {
	received := totals.PixPaid.Add(totals.CardApproved)
	return [][2]string{
		{"Recebido via PIX", "R$ " + totals.PixPaid.StringFixed(2)},
		{"PIX Pendente", "R$ " + totals.PixPending.StringFixed(2)},
		{"Recebido via Cartão", "R$ " + totals.CardApproved.StringFixed(2)},
		{"Total Recebido", "R$ " + received.StringFixed(2)},
	}
}

func metricTable(title string, pairs [][2]string) ReportTable {
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p[0], p[1]})
	}
	return ReportTable{
		Title:   title,
		Headers: []string{"Métrica", "Valor"},
		Rows:    rows,
	}
}

// renderCSV segue o formato do export original: BOM UTF-8 para o Excel,
// cabeçalho sem aspas e todo campo de dado entre aspas duplas.
func renderCSV(table ReportTable) []byte {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	buf.WriteString(strings.Join(table.Headers, ","))
	buf.WriteString("\n")

	for _, row := range table.Rows {
		quoted := make([]string, 0, len(row))
		for _, field := range row {
			quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
		}
		buf.WriteString(strings.Join(quoted, ","))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

func renderJSON(table ReportTable, source string) ([]byte, error) {
	payload := struct {
		ReportTable
		Source      string `json:"source"`
		GeneratedAt string `json:"generated_at"`
	}{
		ReportTable: table,
		Source:      source,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	return json.MarshalIndent(payload, "", "  ")
}

var printableTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; }
h1 { font-size: 20px; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
th, td { border: 1px solid #999; padding: 8px 12px; text-align: left; }
th { background: #efefef; }
.meta { color: #666; font-size: 12px; margin-top: 24px; }
@media print { .meta { display: none; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
<p class="meta">Gerado em {{.GeneratedAt}} ({{.Source}}). Use imprimir &rarr; salvar como PDF.</p>
</body>
</html>
`))

func renderPrintableHTML(table ReportTable, source string) ([]byte, error) {
	var buf bytes.Buffer
	err := printableTemplate.Execute(&buf, struct {
		ReportTable
		Source      string
		GeneratedAt string
	}{
		ReportTable: table,
		Source:      source,
		GeneratedAt: time.Now().Format("02/01/2006 15:04"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
