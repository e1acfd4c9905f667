package domain

// PayRateStore persists the single pay-rate setting as raw text, replaced
// wholesale on every write. Read returns "" when no value has been stored.
type PayRateStore interface {
	Read() (string, error)
	Write(value string) error
}
