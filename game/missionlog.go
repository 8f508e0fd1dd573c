package game

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

const (
	// bottomMessageFrames is how long a ticker line stays up
	bottomMessageFrames = 180

	// maxBottomLines is the number of ticker lines shown at once
	maxBottomLines = 3

	// revealPerFrame is the typewriter speed in characters per frame
	revealPerFrame = 1
)

type logMessage struct {
	id     string
	text   string
	frames int
	shown  int
}

type tickerLine struct {
	text   string
	frames int
}

// MissionLog is the in-game narrator: a queue of centred briefing lines
// revealed with a typewriter effect, and a ticker along the bottom edge
type MissionLog struct {
	queue   []logMessage
	current *logMessage
	ticker  []tickerLine
	logger  zerolog.Logger
}

// NewMissionLog creates an empty log
func NewMissionLog(logger zerolog.Logger) *MissionLog {
	return &MissionLog{
		logger: logger.With().Str("component", "missionlog").Logger(),
	}
}

// TriggerEvent runs the script registered for an event
func (l *MissionLog) TriggerEvent(name string, payload map[string]any) {
	l.logger.Debug().Str("event", name).Interface("payload", payload).Msg("narration event")

	switch name {
	case EventMissionStart:
		l.missionBriefing(intField(payload, "mission"))
	case EventCloudCollected:
		count, total := intField(payload, "count"), intField(payload, "total")
		if count >= total {
			l.QueueMessage("mission1_complete", "All astrophage samples secured. Fuel reserves restored.", 180)
			return
		}
		l.QueueBottomMessage(fmt.Sprintf("Astrophage sample secured (%d/%d)", count, total))
	case EventCanisterCollected:
		count, total := intField(payload, "count"), intField(payload, "total")
		if count >= total {
			l.QueueMessage("mission2_complete", "All canisters received. The message is clear: they want to help.", 200)
			return
		}
		l.QueueBottomMessage(fmt.Sprintf("Alien canister received (%d/%d)", count, total))
	case EventShipDestroyed:
		l.QueueBottomMessage("Hull breach. Rebuilding ship...")
	case EventShipRespawned:
		l.QueueBottomMessage("Ship restored. Shields up.")
	}
}

func (l *MissionLog) missionBriefing(mission int) {
	switch mission {
	case 1:
		l.QueueMessage("mission1", "Mission 1: Collect Astrophage. Fly through the drifting clouds.", 180)
	case 2:
		l.QueueMessage("mission2", "Mission 2: Receive Canisters. Something is sending us gifts.", 180)
	case 3:
		l.QueueMessage("mission3", "Mission 3: Clear the field. Survive.", 150)
	}
}

// QueueMessage adds a centred message shown for durationFrames once all
// earlier messages have finished
func (l *MissionLog) QueueMessage(id, text string, durationFrames int) {
	l.queue = append(l.queue, logMessage{id: id, text: text, frames: durationFrames})
}

// QueueBottomMessage adds a ticker line
func (l *MissionLog) QueueBottomMessage(text string) {
	l.ticker = append(l.ticker, tickerLine{text: text, frames: bottomMessageFrames})
	if len(l.ticker) > maxBottomLines {
		l.ticker = l.ticker[len(l.ticker)-maxBottomLines:]
	}
}

// IsDisplayingMessage reports whether a centred message is on screen
func (l *MissionLog) IsDisplayingMessage() bool {
	return l.current != nil || len(l.queue) > 0
}

// Current returns the id of the message on screen, if any
func (l *MissionLog) Current() (string, bool) {
	if l.current == nil {
		return "", false
	}
	return l.current.id, true
}

// Update advances message timers by one frame
func (l *MissionLog) Update() {
	if l.current == nil && len(l.queue) > 0 {
		msg := l.queue[0]
		l.queue = l.queue[1:]
		l.current = &msg
	}
	if l.current != nil {
		l.current.shown++
		if l.current.shown >= l.current.frames {
			l.current = nil
		}
	}

	live := l.ticker[:0]
	for _, t := range l.ticker {
		t.frames--
		if t.frames > 0 {
			live = append(live, t)
		}
	}
	l.ticker = live
}

// Draw renders the current message and the ticker
func (l *MissionLog) Draw(s Surface, w, h float64) {
	if l.current != nil {
		runes := []rune(l.current.text)
		n := min(len(runes), l.current.shown*revealPerFrame)
		boxW := math.Min(w-40, 620)
		s.FillRect(w/2-boxW/2, h/2-30, boxW, 60, rgba(0, 0, 0, 0.75))
		s.StrokeRect(w/2-boxW/2, h/2-30, boxW, 60, 1, colorGreen)
		s.Text(string(runes[:n]), w/2, h/2, colorGreen, AlignCenter)
	}

	for i, t := range l.ticker {
		y := h - 20 - float64(len(l.ticker)-1-i)*16
		alpha := math.Min(1, float64(t.frames)/30)
		s.Text(t.text, 20, y, rgba(0, 255, 0, alpha), AlignLeft)
	}
}

// intField reads an integer payload value
func intField(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
