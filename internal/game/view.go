package game

// View receives everything the game reports to the player.
type View interface {
	// ShowTable renders both hands. The dealer's last card is hidden unless
	// revealDealer is set.
	ShowTable(player *Player, dealer *Dealer, revealDealer bool)
	ShowReshuffle()
	ShowError(err error)
	ShowMessage(msg string)
	ShowResult(result RoundResult)
}

// RoundObserver is notified after every settled round.
type RoundObserver interface {
	Record(result RoundResult)
}
