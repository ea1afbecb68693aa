// Package constants provides shared constants used throughout the comic store.
// This includes file permissions, file names, field layouts, and other values
// that must stay consistent between the repositories and the command line.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Storage layout constants
const (
	// DefaultDataDir is the directory holding every repository file
	DefaultDataDir = "data"

	// ComicsFile holds the catalog
	ComicsFile = "comics.txt"

	// CustomersFile holds the customer directory
	CustomersFile = "customers.txt"

	// StockFile holds the stock ledger
	StockFile = "stock.txt"

	// OrdersFile holds the committed order history
	OrdersFile = "orders.txt"

	// AdminFile holds the single username,password credential line
	AdminFile = "admin.txt"

	// FieldDelimiter separates fields within one persisted line
	FieldDelimiter = ","

	// TempSuffix is appended to a file name while it is being rewritten
	TempSuffix = ".tmp"
)

// Record field counts
const (
	// LegacyComicFields is the original id,title,creator,price layout
	LegacyComicFields = 4

	// ComicFields adds tag, year and on-hand count to the legacy layout
	ComicFields = 7

	// CustomerFields is id,name,contact
	CustomerFields = 3

	// StockFields is comicID,quantity
	StockFields = 2

	// OrderFields is id,receipt,customer,comicID,title,quantity,unitPrice,lineTotal
	OrderFields = 8

	// CredentialFields is username,password
	CredentialFields = 2
)

// Domain defaults
const (
	// NotFoundQuantity is reported for a comic without a stock record
	NotFoundQuantity = -1

	// WalkInCustomerID marks an order placed without a customer login
	WalkInCustomerID = 0

	// UnknownComicTitle labels stock whose comic has been deleted
	UnknownComicTitle = "Unknown Comic"

	// PriceDecimals is the number of decimal places persisted for money
	PriceDecimals = 2
)

// Config file defaults
const (
	// EnvPrefix is the prefix for environment overrides (COMICSTORE_DATA_DIR)
	EnvPrefix = "COMICSTORE"

	// ConfigFileName is the base name of the optional YAML config file
	ConfigFileName = ".comicstore"
)
