package config

// Base application details
const AppName = "tidepad"
const Version = "0.3.0"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidepad.log"

// UI Layout
const MenuBarHeight = 1
const StatusBarHeight = 1

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const DefaultMaxHistory = 100

// Font defaults match the plain monospaced face of a fresh text area.
const DefaultFontFamily = "Monospaced"
const DefaultFontSize = 13

const SystemClipboard = true
const NativeDialogs = false
