package delivery_eta

import "time"

const defaultWindow = time.Minute * 45

// ETAFactory считает ожидаемое время доставки. Дистанция и маршрут -
// внешние входы, поэтому окно фиксированное.
type ETAFactory struct {
	window time.Duration
}

func New(window time.Duration) *ETAFactory {
	if window <= 0 {
		window = defaultWindow
	}
	return &ETAFactory{window: window}
}

func (f *ETAFactory) EstimatedDeliveryTime(baseTime time.Time) time.Time {
	return baseTime.Add(f.window)
}
