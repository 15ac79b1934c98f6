package config

// -----------------------------------------------------------------------------
// Embedded board profiles
//
// Key: board name (build-time choice, see cmd/bringup)
// Val: raw JSON bytes for that board
// -----------------------------------------------------------------------------

const cfgNucleoH743 = `{
  "family": "stm32h7",
  "hclk_hz": 200000000,
  "can": {"enabled": true},
  "usb": {"instance": "usb2"}
}`

const cfgH7ULPI = `{
  "family": "stm32h7",
  "hclk_hz": 240000000,
  "can": {"enabled": true},
  "usb": {
    "instance": "usb1_ulpi",
    "ulpi": {"dir": "PI11", "nxt": "PH4"}
  }
}`

const cfgNucleoF446 = `{
  "family": "stm32f4",
  "can": {"enabled": true}
}`

const cfgNucleoG474 = `{
  "family": "stm32g4",
  "can": {"enabled": true}
}`

var embeddedBoards = map[string][]byte{
	"nucleo-h743zi": []byte(cfgNucleoH743),
	"h7-ulpi-dev":   []byte(cfgH7ULPI),
	"nucleo-f446re": []byte(cfgNucleoF446),
	"nucleo-g474re": []byte(cfgNucleoG474),
}
