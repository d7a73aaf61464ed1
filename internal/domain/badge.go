package domain

const (
	BadgePodium1       Badge = "podium-1"
	BadgePodium2       Badge = "podium-2"
	BadgePodium3       Badge = "podium-3"
	BadgeRecord        Badge = "record"
	BadgeQualification Badge = "qualification"
	BadgeUnknown       Badge = "unknown"
)

// Badge is a tag on a performance denoting podium placement, a club record or a national
// qualification.
type Badge string

// ParseBadge maps a raw tag onto the closed set of badges; unrecognized tags map to
// BadgeUnknown.
func ParseBadge(tag string) Badge {
	switch b := Badge(tag); b {
	case BadgePodium1, BadgePodium2, BadgePodium3, BadgeRecord, BadgeQualification:
		return b
	default:
		return BadgeUnknown
	}
}

// PodiumPosition returns the podium position (1-3) of a podium badge.
func (b Badge) PodiumPosition() (int, bool) {
	switch b {
	case BadgePodium1:
		return 1, true
	case BadgePodium2:
		return 2, true
	case BadgePodium3:
		return 3, true
	}
	return 0, false
}
