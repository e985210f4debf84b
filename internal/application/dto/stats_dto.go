package dto

// OverviewDTO resumen agregado para el panel de administración (o la vista
// del contador, restringida a su cartera). MonthlyDocuments siempre tiene 12
// posiciones (enero..diciembre) rellenas con cero donde no hubo datos.
type OverviewDTO struct {
	Year              int            `json:"year"`
	UsersByRole       map[string]int `json:"users_by_role,omitempty"`
	CompaniesByStatus map[string]int `json:"companies_by_status"`
	DocumentsByStatus map[string]int `json:"documents_by_status"`
	TotalDocuments    int            `json:"total_documents"`
	MonthlyDocuments  [12]int        `json:"monthly_documents"`
}
