package domain

// ManifestEntry is one desired member within a manifest.
type ManifestEntry struct {
	Pool   PoolIdentifier
	Member MemberIdentifier
	State  DesiredState
}

type Manifest struct {
	Entries []ManifestEntry
}
