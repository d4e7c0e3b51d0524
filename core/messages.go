package core

import (
	"fmt"
	"log"
	"time"
)

const defaultMessageDuration = 3 * time.Second

func yankedMessage(count int, linewise bool) string {
	unit := "characters"
	if linewise {
		unit = "lines"
	}
	if count == 1 {
		unit = unit[:len(unit)-1]
	}
	return fmt.Sprintf("%d %s yanked", count, unit)
}

func unknownCommandMessage(cmd string) string {
	return fmt.Sprintf("E492: Not an editor command: %s", cmd)
}

// DispatchMessage emits transient informational text with the default
// display duration.
func (e *editor) DispatchMessage(text string) {
	select {
	case e.updateSignal <- MessageSignal{text, defaultMessageDuration}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
