package cli

// User-facing results of store operations.
const (
	MsgAdded         = "Player added successfully."
	MsgAddFailed     = "Failed to add player, Player may already exist."
	MsgRemoved       = "Player removed."
	MsgNotFound      = "Player not found."
	MsgUpdated       = "Player updated."
	MsgFound         = "Player has been found successfully"
	MsgSearchMissing = "No player found with that name."
)
