package game

// Narrator shows mission text. Centre messages block gameplay while they are
// on screen; bottom messages are a non-blocking ticker. Update is called once
// per frame and durations are counted in frames.
type Narrator interface {
	TriggerEvent(name string, payload map[string]any)
	QueueMessage(id, text string, durationFrames int)
	QueueBottomMessage(text string)
	IsDisplayingMessage() bool
	Update()
	Draw(s Surface, w, h float64)
}

// Narration event names
const (
	EventMissionStart      = "mission_start"
	EventCloudCollected    = "cloud_collected"
	EventCanisterCollected = "canister_collected"
	EventShipDestroyed     = "ship_destroyed"
	EventShipRespawned     = "ship_respawned"
)
