package enum

// ── Catalog units ──

const (
	UnitKilogram = "KG"
	UnitPiece    = "PIECE"
)

// ── Order state machine (only the initial state exists for now) ──

const (
	OrderStatusPending = "PENDING"
)

// ── View switch ──

const (
	ViewCustomer = "CUSTOMER"
	ViewAdmin    = "ADMIN"
)

// ── Live update events ──

const (
	EventOrderCreated = "order.created"
)
