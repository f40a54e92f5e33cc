package model

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	DefaultAddressBookFile = "addressbook.json"
)

// GuiSettings are the display preferences of the interactive prompt.
type GuiSettings struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Color  bool `json:"color"`
}

func DefaultGuiSettings() GuiSettings {
	return GuiSettings{Width: DefaultWidth, Height: DefaultHeight, Color: true}
}

// UserPrefs are persisted between sessions.
type UserPrefs struct {
	GuiSettings         GuiSettings `json:"guiSettings"`
	AddressBookFilePath string      `json:"addressBookFilePath"`
}

func DefaultUserPrefs() UserPrefs {
	return UserPrefs{
		GuiSettings:         DefaultGuiSettings(),
		AddressBookFilePath: DefaultAddressBookFile,
	}
}
