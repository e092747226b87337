package event

import (
	"math/big"
	"time"
)

// EnrichedEvent is a RawEvent augmented with indexer data for one pipeline
// pass. It is never persisted.
type EnrichedEvent struct {
	Network         string
	ChainID         uint64
	Kind            Kind
	BlockNumber     uint64
	TransactionHash string
	LogIndex        uint
	Timestamp       time.Time // block time reported by the indexer; zero when unknown
	ExplorerURL     string    // explorer base URL of the network, without trailing slash

	// Suppressed marks events that were resolved but fall below a notification
	// threshold. They complete the pipeline without a message being sent.
	Suppressed bool

	Details Details
}

// Details is the kind-specific payload of an EnrichedEvent. The set of
// implementations is closed; formatters switch on the concrete type.
type Details interface {
	isDetails()
}

// AppRegisteredDetails describes a super app registration.
type AppRegisteredDetails struct {
	App string
}

// JailDetails describes a super app being jailed by the host.
type JailDetails struct {
	App        string
	ReasonCode int
	Reason     string // symbolic name of ReasonCode, empty when unknown
}

// ScheduleDetails describes a vesting or flow schedule creation.
type ScheduleDetails struct {
	TokenAddress string
	TokenSymbol  string
	Sender       string
	Receiver     string
}

// TokenMovementDetails describes a super token upgrade or downgrade.
type TokenMovementDetails struct {
	TokenAddress string
	TokenName    string
	TokenSymbol  string
	Account      string
	Amount       *big.Int // raw amount in wei
}

func (AppRegisteredDetails) isDetails() {}
func (JailDetails) isDetails()          {}
func (ScheduleDetails) isDetails()      {}
func (TokenMovementDetails) isDetails() {}

// weiPerEther is 10^18.
var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// WholeTokens returns the amount divided by 10^18, truncated toward zero.
func (d TokenMovementDetails) WholeTokens() *big.Int {
	if d.Amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Quo(d.Amount, weiPerEther)
}
