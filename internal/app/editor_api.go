// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/plugin"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is the App as seen by plugins.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

func (api *appEditorAPI) GetBufferBytes() []byte {
	return api.app.editor.GetBuffer().Bytes()
}

func (api *appEditorAPI) GetBufferLineCount() int {
	return api.app.editor.GetBuffer().LineCount()
}

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		logger.Errorf("appEditorAPI cannot register command '%s': no mode handler", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

func (api *appEditorAPI) ShowMessage(title, message string) {
	api.app.notifier.Info(title, message)
	api.app.modeHandler.SyncMode()
	api.app.requestRedraw()
}

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}
