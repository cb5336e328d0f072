package popup

// ContractVersion identifies the revision of the wire contract carried in
// every Envelope. Bump it when a key or literal in Record changes meaning.
const ContractVersion = "1"

// Envelope is what crosses the host boundary for one popup invocation.
// PopupID is the key the host uses when it reports engine events back.
type Envelope struct {
	Version string `json:"version" yaml:"version"`
	PopupID string `json:"popupId" yaml:"popupId"`
	Surface string `json:"surface,omitempty" yaml:"surface,omitempty"`
	Options Record `json:"options" yaml:"options"`
}

// Wrap builds an Envelope at the current ContractVersion.
func Wrap(popupID, surface string, rec Record) Envelope {
	return Envelope{
		Version: ContractVersion,
		PopupID: popupID,
		Surface: surface,
		Options: rec,
	}
}
