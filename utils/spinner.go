package utils

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

var activeSpinner *spinner.Spinner

// StartSpinner shows a spinner on stderr until StopSpinner is called
func StartSpinner() {
	if activeSpinner != nil {
		return
	}
	activeSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	activeSpinner.Suffix = " Fetching Home Assistant registries..."
	activeSpinner.Start()
}

func StopSpinner() {
	if activeSpinner == nil {
		return
	}
	activeSpinner.Stop()
	activeSpinner = nil
}
