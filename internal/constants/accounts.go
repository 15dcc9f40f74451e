package constants

const (
	MaxNameLen      = 100
	MaxCategoryLen  = 100
	DefaultCurrency = "USD"
)

const (
	DBFileName    = "cashflow.db"
	AppDirName    = "cashflow"
	EnvPrefix     = "CASHFLOW"
	DataDirEnvVar = "DATA_DIR"
)
