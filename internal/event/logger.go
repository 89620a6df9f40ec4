// internal/event/logger.go
package event

import "go.uber.org/zap"

// LogListener writes every event it receives to a zap logger at debug level.
type LogListener struct {
	logger *zap.Logger
}

func NewLogListener(logger *zap.Logger) *LogListener {
	return &LogListener{logger: logger.Named("event")}
}

func (l *LogListener) OnEvent(e Event) {
	fields := []zap.Field{zap.String("type", string(e.Type))}
	switch d := e.Data.(type) {
	case TowerData:
		fields = append(fields, zap.Int32("x", d.Coord.X), zap.Int32("y", d.Coord.Y), zap.Stringer("tower", d.Type))
	case FocusData:
		fields = append(fields, zap.Int32("x", d.Coord.X), zap.Int32("y", d.Coord.Y), zap.Bool("open", d.HasFocus))
	case CollectData:
		fields = append(fields, zap.Int32("x", d.Coord.X), zap.Int32("y", d.Coord.Y), zap.Float64("amount", d.Amount), zap.String("unit", d.Unit))
	case SaveData:
		fields = append(fields, zap.String("name", d.Name), zap.String("session", d.Session), zap.Int("machines", d.Machines))
	case nil:
	default:
		fields = append(fields, zap.Any("data", d))
	}
	l.logger.Debug("event", fields...)
}
