package system

import (
	"context"
	"fmt"

	"github.com/devpospicha/pulse/internal/logger"
	"github.com/devpospicha/pulse/internal/model"
	"github.com/shirou/gopsutil/v4/sensors"
)

type SensorCollector struct{}

func NewSensorCollector() *SensorCollector {
	return &SensorCollector{}
}

func (c *SensorCollector) Name() string {
	return "sensors"
}

// Collect reads temperature sensors. gopsutil reports unreadable sensors as
// warnings next to the readable ones; those partial results are kept.
func (c *SensorCollector) Collect(ctx context.Context, snap *model.Snapshot) error {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if err != nil {
		if len(temps) == 0 {
			return fmt.Errorf("failed to read temperature sensors: %w", err)
		}
		logger.Debug("Partial sensor readings: %v", err)
	}
	for _, t := range temps {
		snap.Sensors = append(snap.Sensors, toSensor(t))
	}
	return nil
}

func toSensor(t sensors.TemperatureStat) model.Sensor {
	s := model.Sensor{Label: t.SensorKey}
	temp := t.Temperature
	s.TemperatureC = &temp
	if t.High > 0 {
		high := t.High
		s.MaxC = &high
	}
	return s
}
