package event

// Payload is the JSON body exchanged at the webhook boundary:
//
//	{"networkName": "...", "chainId": 137, "event": {"event": "Jail", ...}}
//
// The scanner produces it and the webhook server consumes it. The event
// object follows the shape of an ethers.js event, so unknown fields such as
// "data" or "topics" are ignored on decode.
type Payload struct {
	NetworkName string       `json:"networkName" validate:"required,network"`
	ChainID     uint64       `json:"chainId"`
	Event       EventPayload `json:"event" validate:"required"`
}

// EventPayload is the event object of a Payload.
type EventPayload struct {
	Event           string `json:"event" validate:"required"`
	Address         string `json:"address,omitempty" validate:"required_if=Event TokenUpgraded,required_if=Event TokenDowngraded"`
	BlockNumber     uint64 `json:"blockNumber"`
	TransactionHash string `json:"transactionHash" validate:"required,txhash"`
	LogIndex        uint   `json:"logIndex"`
	Args            []Arg  `json:"args"`
}

// NewPayload converts e to its wire form.
func NewPayload(e RawEvent) Payload {
	args := e.Args
	if args == nil {
		args = []Arg{}
	}

	return Payload{
		NetworkName: e.Network,
		ChainID:     e.ChainID,
		Event: EventPayload{
			Event:           string(e.Kind),
			Address:         e.Address,
			BlockNumber:     e.BlockNumber,
			TransactionHash: e.TransactionHash,
			LogIndex:        e.LogIndex,
			Args:            args,
		},
	}
}

// RawEvent converts p back to the domain form.
func (p Payload) RawEvent() RawEvent {
	return RawEvent{
		Network:         p.NetworkName,
		ChainID:         p.ChainID,
		Kind:            Kind(p.Event.Event),
		Address:         p.Event.Address,
		BlockNumber:     p.Event.BlockNumber,
		TransactionHash: p.Event.TransactionHash,
		LogIndex:        p.Event.LogIndex,
		Args:            p.Event.Args,
	}
}
