// =============================================================================
// QMS Defect Extractor - Column Mapping Table
// =============================================================================
//
// This module holds the fixed mapping from worksheet column headers to
// DefectRecord fields. Each entry names:
//   - Header : the exact header text on the sheet (spaces and newlines kept)
//   - Field  : the JSON field name on the exported record
//   - Kind   : the normalizer applied to the cell
//
// The key column ("Doc. Nº") is not part of this table; rows are keyed on it
// before any field is mapped.
//
// =============================================================================

package mapping

import (
	"github.com/DekoMao/qms-mao-brasil/internal/normalize"
	"github.com/DekoMao/qms-mao-brasil/internal/types"
)

// Default sheet columns with special roles.
const (
	KeyColumn      = "Doc. Nº"
	SupplierColumn = "Supplier"
)

// FieldKind selects the normalizer for a column.
type FieldKind int

const (
	KindString FieldKind = iota
	KindDate
	KindInt
)

func (k FieldKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindInt:
		return "int"
	default:
		return "string"
	}
}

// FieldMapping maps one source column to one record field.
type FieldMapping struct {
	Header string
	Field  string
	Kind   FieldKind

	assign func(*DefectRecord, types.Cell)
}

// Apply normalizes the cell and stores it on the record.
func (m FieldMapping) Apply(rec *DefectRecord, c types.Cell) {
	m.assign(rec, c)
}

func stringField(header, field string, ptr func(*DefectRecord) *optString) FieldMapping {
	return FieldMapping{Header: header, Field: field, Kind: KindString, assign: func(r *DefectRecord, c types.Cell) {
		*ptr(r) = normalize.String(c)
	}}
}

func dateField(header, field string, ptr func(*DefectRecord) *optString) FieldMapping {
	return FieldMapping{Header: header, Field: field, Kind: KindDate, assign: func(r *DefectRecord, c types.Cell) {
		*ptr(r) = normalize.Date(c)
	}}
}

func intField(header, field string, ptr func(*DefectRecord) *optInt) FieldMapping {
	return FieldMapping{Header: header, Field: field, Kind: KindInt, assign: func(r *DefectRecord, c types.Cell) {
		*ptr(r) = normalize.Int(c)
	}}
}

// Columns returns the mapping table in export order.
func Columns() []FieldMapping {
	out := make([]FieldMapping, len(columns))
	copy(out, columns)
	return out
}

// Headers returns the source headers of the mapping table.
func Headers() []string {
	headers := make([]string, len(columns))
	for i, m := range columns {
		headers[i] = m.Header
	}
	return headers
}

var columns = []FieldMapping{
	dateField("Open date", "openDate", func(r *DefectRecord) *optString { return &r.OpenDate }),
	stringField("Week", "weekNumber", func(r *DefectRecord) *optString { return &r.WeekNumber }),
	stringField("Month", "monthName", func(r *DefectRecord) *optString { return &r.MonthName }),
	stringField("Status", "status", func(r *DefectRecord) *optString { return &r.Status }),
	stringField(SupplierColumn, "supplier", func(r *DefectRecord) *optString { return &r.Supplier }),
	stringField("Material", "material", func(r *DefectRecord) *optString { return &r.Material }),
	stringField("PN", "pn", func(r *DefectRecord) *optString { return &r.PN }),
	stringField("Description", "description", func(r *DefectRecord) *optString { return &r.Description }),
	stringField("Symptom", "symptom", func(r *DefectRecord) *optString { return &r.Symptom }),
	intField("QTY", "qtyDefect", func(r *DefectRecord) *optInt { return &r.QtyDefect }),
	intField("Rate", "qtyInspected", func(r *DefectRecord) *optInt { return &r.QtyInspected }),
	stringField("MG", "severityMg", func(r *DefectRecord) *optString { return &r.SeverityMg }),
	stringField("Defects", "severityInsp", func(r *DefectRecord) *optString { return &r.SeverityInsp }),
	stringField("Detection", "disposition", func(r *DefectRecord) *optString { return &r.Disposition }),
	dateField("Data Disposição (Cotenção)", "dispositionDate", func(r *DefectRecord) *optString { return &r.DispositionDate }),
	stringField("Tracking Progress ", "technicalAnalysis", func(r *DefectRecord) *optString { return &r.TechnicalAnalysis }),
	dateField("Data Análise Técnica", "technicalAnalysisDate", func(r *DefectRecord) *optString { return &r.TechnicalAnalysisDate }),
	stringField("Cause", "cause", func(r *DefectRecord) *optString { return &r.Cause }),
	dateField("Data Causa Raiz", "causeDate", func(r *DefectRecord) *optString { return &r.CauseDate }),
	stringField("Corrective actions", "correctiveActions", func(r *DefectRecord) *optString { return &r.CorrectiveActions }),
	dateField("Data Ação Corretiva", "correctiveActionsDate", func(r *DefectRecord) *optString { return &r.CorrectiveActionsDate }),
	stringField("Check Solution", "validationCorrectiveActions", func(r *DefectRecord) *optString { return &r.ValidationCorrectiveActions }),
	dateField("Data Validação Ação Corretiva", "validationCorrectiveActionsDate", func(r *DefectRecord) *optString { return &r.ValidationCorrectiveActionsDate }),
	dateField("Semana de fechamento da ação corretiva", "closeDate", func(r *DefectRecord) *optString { return &r.CloseDate }),
	stringField("Category", "defectType", func(r *DefectRecord) *optString { return &r.DefectType }),
	stringField("Occurrence", "defectOrigin", func(r *DefectRecord) *optString { return &r.DefectOrigin }),
	stringField("Supply Feedback", "supplyFeedback", func(r *DefectRecord) *optString { return &r.SupplyFeedback }),
	stringField("Owner", "sqaOwner", func(r *DefectRecord) *optString { return &r.SqaOwner }),
	stringField("Evidence", "remarks", func(r *DefectRecord) *optString { return &r.Remarks }),

	stringField("Model", "model", func(r *DefectRecord) *optString { return &r.Model }),
	stringField("Customer", "customer", func(r *DefectRecord) *optString { return &r.Customer }),
	stringField("QCR nº", "qcrNumber", func(r *DefectRecord) *optString { return &r.QcrNumber }),
	dateField("Target", "target", func(r *DefectRecord) *optString { return &r.Target }),
	stringField("Status Supply FB", "statusSupplyFb", func(r *DefectRecord) *optString { return &r.StatusSupplyFb }),

	stringField("Responsável Atual", "currentResponsible", func(r *DefectRecord) *optString { return &r.CurrentResponsible }),
	stringField("STEP", "step", func(r *DefectRecord) *optString { return &r.Step }),
	intField("Aging SQA (Disposição)", "agingDisposition", func(r *DefectRecord) *optInt { return &r.AgingDisposition }),
	intField("Aging Fornecedor (Análise Técnica)", "agingTechnicalAnalysis", func(r *DefectRecord) *optInt { return &r.AgingTechnicalAnalysis }),
	intField("Aging Fornecedor (Causa Raiz)", "agingCauseRoot", func(r *DefectRecord) *optInt { return &r.AgingCauseRoot }),
	intField("Aging Fornecedor (Ação corretiva)", "agingCorrectiveAction", func(r *DefectRecord) *optInt { return &r.AgingCorrectiveAction }),
	intField("Aging SQA (Validação Ação Corretiva)", "agingValidation", func(r *DefectRecord) *optInt { return &r.AgingValidation }),
	intField("Aging (Total)", "agingTotal", func(r *DefectRecord) *optInt { return &r.AgingTotal }),
	intField("Aging \n(By STEP)", "agingByStep", func(r *DefectRecord) *optInt { return &r.AgingByStep }),
	intField("DIAS EM ATRASO", "daysLate", func(r *DefectRecord) *optInt { return &r.DaysLate }),
}
