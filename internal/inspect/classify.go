package inspect

// Classify selects exactly one Evidence variant for the given metadata.
// Chat origin wins over user origin, which wins over a hidden sender name.
func Classify(meta ForwardMetadata) Evidence {
	switch {
	case meta.FromChat != nil:
		return ChatForward{Chat: *meta.FromChat}
	case meta.FromUser != nil:
		return UserForward{User: *meta.FromUser}
	case meta.SenderName != "":
		return HiddenForward{SenderName: meta.SenderName}
	default:
		return NoForward{}
	}
}
