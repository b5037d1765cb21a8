package utils

// =============================================================================
// Spreadsheet markers
// =============================================================================

// MissingMarkers are cell contents that mean "no measurement"
var MissingMarkers = []string{"#DIV/0!", "#DIV/0", "NA", "N/A", "NAN", "-"}

// Board layout
const (
	// BoardHeaderMarker identifies the header row of a consolidated board
	BoardHeaderMarker = "Nombre del Indicador"

	// BoardHeaderScanRows is how many leading rows are searched for a header
	BoardHeaderScanRows = 10

	// SubHeaderMarker identifies the semaphore sub-header row under the header
	SubHeaderMarker = "nivel"

	// SemaphoreMarker starts the achieved/satisfactory/critical column block
	SemaphoreMarker = "semaforizacion"

	// HistorySectionMarker opens the results table of an indicator sheet
	HistorySectionMarker = "RESULTADOS VIGENCIA"

	// HistoryResultMarker labels the row holding historical results
	HistoryResultMarker = "RESULTADO"

	// ConsolidatedSheet is the board sheet name, never an indicator sheet
	ConsolidatedSheet = "CONSOLIDADO"
)

// Sector battery layout
const (
	// BatteryHeaderMarker identifies the header row of a sector sheet
	BatteryHeaderMarker = "Código Sector"

	// BatteryTargetColumn holds the four-year target
	BatteryTargetColumn = "Meta Cuatrienio"

	// BatteryNameColumn holds the indicator name
	BatteryNameColumn = "Indicador de Resultado"

	// UnnamedIndicator is used for battery rows without a name
	UnnamedIndicator = "Sin nombre"
)

// BatteryDescriptorColumns are battery columns that never hold period values
var BatteryDescriptorColumns = []string{
	"Código Sector",
	"Sector",
	"Código Objetivo Resultado",
	"Objetivo de Resultado",
	"Código Indicador de Resultado",
	"Indicador de Resultado",
	"Unidad de Medida",
	"Meta Cuatrienio",
}

// IgnoredSheets are placeholder sheets skipped by the battery loader
var IgnoredSheets = []string{"Hoja1", "Sheet1", "Sheet2"}
