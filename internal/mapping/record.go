package mapping

import "github.com/DekoMao/qms-mao-brasil/internal/types"

type (
	optString = types.Optional[string]
	optInt    = types.Optional[int64]
)

// DefectRecord is one extracted defect row. DocNumber is always set; every
// other field is absent when the source cell is blank or unparseable.
// Field order is the JSON key order of the export.
type DefectRecord struct {
	DocNumber                       string    `json:"docNumber"`
	OpenDate                        optString `json:"openDate"`
	WeekNumber                      optString `json:"weekNumber"`
	MonthName                       optString `json:"monthName"`
	Status                          optString `json:"status"`
	Supplier                        optString `json:"supplier"`
	Material                        optString `json:"material"`
	PN                              optString `json:"pn"`
	Description                     optString `json:"description"`
	Symptom                         optString `json:"symptom"`
	QtyDefect                       optInt    `json:"qtyDefect"`
	QtyInspected                    optInt    `json:"qtyInspected"`
	SeverityMg                      optString `json:"severityMg"`
	SeverityInsp                    optString `json:"severityInsp"`
	Disposition                     optString `json:"disposition"`
	DispositionDate                 optString `json:"dispositionDate"`
	TechnicalAnalysis               optString `json:"technicalAnalysis"`
	TechnicalAnalysisDate           optString `json:"technicalAnalysisDate"`
	Cause                           optString `json:"cause"`
	CauseDate                       optString `json:"causeDate"`
	CorrectiveActions               optString `json:"correctiveActions"`
	CorrectiveActionsDate           optString `json:"correctiveActionsDate"`
	ValidationCorrectiveActions     optString `json:"validationCorrectiveActions"`
	ValidationCorrectiveActionsDate optString `json:"validationCorrectiveActionsDate"`
	CloseDate                       optString `json:"closeDate"`
	DefectType                      optString `json:"defectType"`
	DefectOrigin                    optString `json:"defectOrigin"`
	SupplyFeedback                  optString `json:"supplyFeedback"`
	SqaOwner                        optString `json:"sqaOwner"`
	Remarks                         optString `json:"remarks"`

	// Additional sheet columns.
	Model          optString `json:"model"`
	Customer       optString `json:"customer"`
	QcrNumber      optString `json:"qcrNumber"`
	Target         optString `json:"target"`
	StatusSupplyFb optString `json:"statusSupplyFb"`

	// Columns the sheet computes itself.
	CurrentResponsible     optString `json:"currentResponsible"`
	Step                   optString `json:"step"`
	AgingDisposition       optInt    `json:"agingDisposition"`
	AgingTechnicalAnalysis optInt    `json:"agingTechnicalAnalysis"`
	AgingCauseRoot         optInt    `json:"agingCauseRoot"`
	AgingCorrectiveAction  optInt    `json:"agingCorrectiveAction"`
	AgingValidation        optInt    `json:"agingValidation"`
	AgingTotal             optInt    `json:"agingTotal"`
	AgingByStep            optInt    `json:"agingByStep"`
	DaysLate               optInt    `json:"daysLate"`
}
