package cache

// ScopedKeyer wraps a Keyer with a prefix, giving separate cache
// namespaces to concurrent designs or server instances sharing one
// backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// DesignKey generates a prefixed design key.
func (k *ScopedKeyer) DesignKey(capacityLiters float64) string {
	return k.prefix + k.inner.DesignKey(capacityLiters)
}

// DocumentKey generates a prefixed document key.
func (k *ScopedKeyer) DocumentKey(designHash, name string) string {
	return k.prefix + k.inner.DocumentKey(designHash, name)
}

// ModelKey generates a prefixed model key.
func (k *ScopedKeyer) ModelKey(designHash string, opts ModelKeyOpts) string {
	return k.prefix + k.inner.ModelKey(designHash, opts)
}

// PageKey generates a prefixed page key.
func (k *ScopedKeyer) PageKey(designHash, route string) string {
	return k.prefix + k.inner.PageKey(designHash, route)
}
