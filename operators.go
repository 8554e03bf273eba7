package jupdate

// Field update operators.
const (
	OpInc         = "$inc"
	OpMul         = "$mul"
	OpRename      = "$rename"
	OpSetOnInsert = "$setOnInsert"
	OpSet         = "$set"
	OpUnset       = "$unset"
	OpMin         = "$min"
	OpMax         = "$max"
	OpCurrentDate = "$currentDate"
)

// Array update operators.
const (
	OpPositional = "$"
	OpAddToSet   = "$addToSet"
	OpPop        = "$pop"
	OpPullAll    = "$pullAll"
	OpPull       = "$pull"
	OpPush       = "$push"
)

// Array update modifiers.
const (
	ModEach     = "$each"
	ModSlice    = "$slice"
	ModSort     = "$sort"
	ModPosition = "$position"
)

// Bitwise update operator and its sub-keys.
const (
	OpBit  = "$bit"
	BitAnd = "and"
	BitOr  = "or"
	BitXor = "xor"
)

const OpIsolated = "$isolated"

// Type markers written under $currentDate. By default they are these literal
// strings; see WithStructuredTypeMarkers.
const (
	DateTypeMarker      = `{$type:"date"}`
	TimestampTypeMarker = `{$type:"timestamp"}`
)

const typeKey = "$type"

// Sort directions.
const (
	Ascending  Int32 = 1
	Descending Int32 = -1
)
