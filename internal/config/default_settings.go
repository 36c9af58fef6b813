package config

type defaultSettingKey uint

const (
	OUTPUTDIR       defaultSettingKey = 0x0
	OUTPUT          defaultSettingKey = 0x1
	DELAY           defaultSettingKey = 0x2
	DISPLAY         defaultSettingKey = 0x3
	TIMESTAMPFORMAT defaultSettingKey = 0x4
	DATETIMEFORMAT  defaultSettingKey = 0x5
)

var defaultSettings = map[defaultSettingKey]interface{}{
	OUTPUTDIR:       "output",
	OUTPUT:          "screenshot.png",
	DELAY:           3,
	DISPLAY:         0,
	TIMESTAMPFORMAT: "20060102_150405",
	DATETIMEFORMAT:  "2006/01/02 15:04:05",
}
