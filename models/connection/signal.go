package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame
	CodeAttack

	// Board events pushed to the client while an attack resolves
	CodeTileState
	CodeShipSunk
	CodeEndGame

	CodeGameState
	CodeAbandonGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)
