package gui

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsNotifier shows status updates and dialogs in the window
type wailsNotifier struct {
	ctx context.Context
}

func (w *wailsNotifier) Status(msg string) {
	runtime.EventsEmit(w.ctx, StatusEvent, msg)
}

func (w *wailsNotifier) dialog(kind runtime.DialogType, title string, msg string) {
	_, err := runtime.MessageDialog(w.ctx, runtime.MessageDialogOptions{
		Type:    kind,
		Title:   title,
		Message: msg,
	})
	if err != nil {
		runtime.LogError(w.ctx, err.Error())
	}
}

func (w *wailsNotifier) Info(title string, msg string) {
	w.dialog(runtime.InfoDialog, title, msg)
}

func (w *wailsNotifier) Warning(title string, msg string) {
	w.dialog(runtime.WarningDialog, title, msg)
}

func (w *wailsNotifier) Error(title string, msg string) {
	w.dialog(runtime.ErrorDialog, title, msg)
}
