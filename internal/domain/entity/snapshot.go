package entity

// LedgerSnapshot es la vista completa e inmutable del estado de la sesión.
// El agregador de métricas y el proveedor de pronósticos trabajan siempre
// sobre un snapshot: nunca retienen referencias al estado vivo entre llamadas.
type LedgerSnapshot struct {
	Products          []Product
	History           []DailyStat
	TodayTransactions []Transaction
	TodayExpenses     []Expense
	BaseVisits        int
	Settings          AppSettings
}

// RestorePatch es el resultado de decodificar un respaldo: solo los campos
// presentes en el documento se aplican sobre el estado vivo (restauración
// parcial campo a campo, nunca todo-o-nada).
//
// Un slice nil significa "no tocar"; un slice vacío no-nil sí reemplaza.
type RestorePatch struct {
	Products     []Product
	History      []DailyStat
	Transactions []Transaction
	Expenses     []Expense
	BaseVisits   *int
	Settings     *AppSettings
}
