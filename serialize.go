package bard

// Serialized export records. Every entity serializes to a record carrying a
// "type" discriminator so the output can be consumed as generic structured
// data (JSON export, document generation). Serialization is one-way: the
// records are plain data, not re-parsed back into live entities.

// PlayRecord is the serialized form of a Play.
type PlayRecord struct {
	Type  string      `json:"type"`
	Title string      `json:"title"`
	URL   string      `json:"url"`
	Acts  []ActRecord `json:"acts"`
}

// ActRecord is the serialized form of an Act.
type ActRecord struct {
	Type   string        `json:"type"`
	ActNo  int           `json:"act_no"`
	Scenes []SceneRecord `json:"scenes"`
}

// SceneRecord is the serialized form of a Scene. Events holds
// DirectionRecord and SpeechRecord values.
type SceneRecord struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	ActNo   int    `json:"act_no"`
	SceneNo int    `json:"scene_no"`
	Events  []any  `json:"events"`
}

// SpeechRecord is the serialized form of a Speech. Lines holds
// StringRecord and DirectionRecord values.
type SpeechRecord struct {
	Type    string `json:"type"`
	Speaker string `json:"speaker"`
	Lines   []any  `json:"lines"`
	ActNo   int    `json:"act_no"`
	SceneNo int    `json:"scene_no"`
	LineNo  int    `json:"line_no"`
}

// DirectionRecord is the serialized form of a Direction.
type DirectionRecord struct {
	Type      string `json:"type"`
	Direction string `json:"direction"`
}

// StringRecord wraps a plain spoken line.
type StringRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Serialize converts the play and its whole subtree to records.
func (p *Play) Serialize() PlayRecord {
	acts := make([]ActRecord, len(p.Acts))
	for i, act := range p.Acts {
		acts[i] = act.Serialize()
	}
	return PlayRecord{
		Type:  "play",
		Title: p.Title,
		URL:   p.URL,
		Acts:  acts,
	}
}

// Serialize converts the act and its scenes to records.
func (a *Act) Serialize() ActRecord {
	scenes := make([]SceneRecord, len(a.Scenes))
	for i, scene := range a.Scenes {
		scenes[i] = scene.Serialize()
	}
	return ActRecord{
		Type:   "act",
		ActNo:  a.ActNo,
		Scenes: scenes,
	}
}

// Serialize converts the scene and its events to records.
func (s *Scene) Serialize() SceneRecord {
	events := make([]any, len(s.Events))
	for i, event := range s.Events {
		switch event := event.(type) {
		case *Direction:
			events[i] = event.Serialize()
		case *Speech:
			events[i] = event.Serialize()
		}
	}
	return SceneRecord{
		Type:    "scene",
		Title:   s.Title,
		ActNo:   s.ActNo,
		SceneNo: s.SceneNo,
		Events:  events,
	}
}

// Serialize converts the speech to a record, wrapping plain lines as
// StringRecord values.
func (s *Speech) Serialize() SpeechRecord {
	lines := make([]any, len(s.Lines))
	for i, line := range s.Lines {
		switch line := line.(type) {
		case Text:
			lines[i] = StringRecord{Type: "string", Value: string(line)}
		case *Direction:
			lines[i] = line.Serialize()
		}
	}
	return SpeechRecord{
		Type:    "speech",
		Speaker: s.Speaker,
		Lines:   lines,
		ActNo:   s.ActNo,
		SceneNo: s.SceneNo,
		LineNo:  s.LineNo,
	}
}

// Serialize converts the direction to a record.
func (d *Direction) Serialize() DirectionRecord {
	return DirectionRecord{Type: "direction", Direction: d.Text}
}
