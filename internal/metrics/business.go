package metrics

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementCardCreated increments the card creation counter
func (m *Metrics) IncrementCardCreated() {
	m.safeExecute("IncrementCardCreated", func() {
		m.CardCreatedTotal.Inc()
	})
}

// IncrementCardMoved increments the card move counter
func (m *Metrics) IncrementCardMoved() {
	m.safeExecute("IncrementCardMoved", func() {
		m.CardMovedTotal.Inc()
	})
}

// IncrementWipLimitRejected increments the WIP rejection counter
func (m *Metrics) IncrementWipLimitRejected() {
	m.safeExecute("IncrementWipLimitRejected", func() {
		m.WipLimitRejectedTotal.Inc()
	})
}

// IncrementVersionConflicts increments the compare-and-swap conflict counter
func (m *Metrics) IncrementVersionConflicts() {
	m.safeExecute("IncrementVersionConflicts", func() {
		m.VersionConflictsTotal.Inc()
	})
}

// SetBoardsTotal sets the total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetCardsTotal sets the total cards gauge
func (m *Metrics) SetCardsTotal(count int64) {
	m.safeExecute("SetCardsTotal", func() {
		m.CardsTotal.Set(float64(count))
	})
}
