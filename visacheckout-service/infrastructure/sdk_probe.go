package infrastructure

// StaticSDKProbe reports SDK availability fixed at deploy time
type StaticSDKProbe struct {
	available bool
}

func NewStaticSDKProbe(available bool) *StaticSDKProbe {
	return &StaticSDKProbe{available: available}
}

// Available implements domain.SDKProbe
func (p *StaticSDKProbe) Available() bool {
	return p.available
}
