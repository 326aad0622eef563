package domain

// SentinelConcept is the reserved catch-all concept. It always exists, cannot
// be renamed or deleted, and stays at the end of the registry.
const SentinelConcept = "Otro ingreso"

// DefaultConcepts seeds the registry on first use. The sentinel is last.
var DefaultConcepts = []string{
	"Saldo en efectivo",
	"Saldo en Revolut Mama",
	"Saldo en Revolut Javi",
	"Saldo en PayPal Mama",
	"Saldo en PayPal Javi",
	SentinelConcept,
}
