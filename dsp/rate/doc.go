// Package rate derives a continuous event rate from detected peaks.
//
// Peak positions are turned into periods (seconds between consecutive
// peaks) by a [PeriodProvider], optionally resampled onto every sample of
// the original signal, and converted to events per minute:
//
//	rate[i] = 60 / period[i]
//
// The division is not guarded. A zero period yields +Inf and a negative
// period a negative rate.
//
// [PeakPeriods] is the default provider. It fills the first period, which has
// no preceding peak, with the mean of the others and resamples through
// [interp.Interpolate], so its boundary behaviour is that of the chosen
// method: flat for every method except [interp.MonotoneCubic].
package rate
