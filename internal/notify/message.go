package notify

type fieldMode int

const (
	fieldKeep fieldMode = iota
	fieldReset
	fieldShow
)

// Field is the instruction for one region of a Message: leave the region
// unchanged, restore its default content, or show new content.
type Field struct {
	mode    fieldMode
	content Content
}

// Keep leaves the region unchanged.
func Keep() Field {
	return Field{}
}

// Reset restores the region's default content.
func Reset() Field {
	return Field{mode: fieldReset}
}

// Show replaces the region's content with c.
// Nil and empty text leave the region unchanged.
func Show(c Content) Field {
	if c == nil {
		return Keep()
	}
	if t, ok := c.(Text); ok && t == "" {
		return Keep()
	}
	return Field{mode: fieldShow, content: c}
}

// ShowText is Show(Text(s)).
func ShowText(s string) Field {
	return Show(Text(s))
}

// Changes reports whether the field alters its region.
func (f Field) Changes() bool {
	return f.mode != fieldKeep
}

// IsReset reports whether the field restores the default content.
func (f Field) IsReset() bool {
	return f.mode == fieldReset
}

// Content returns the content to show, nil for Keep and Reset.
func (f Field) Content() Content {
	return f.content
}

// Message updates the title and comment regions together.
type Message struct {
	Title   Field
	Comment Field
}

// Plain builds a message that sets the title to s and leaves the comment
// unchanged.
func Plain(s string) Message {
	return Message{Title: ShowText(s), Comment: ShowText("")}
}

// NewMessage builds a message showing title and comment.
// Empty strings leave the respective region unchanged.
func NewMessage(title, comment string) Message {
	return Message{Title: ShowText(title), Comment: ShowText(comment)}
}

// ResetMessage restores both regions to their defaults.
func ResetMessage() Message {
	return Message{Title: Reset(), Comment: Reset()}
}
