// Package dining is the concurrency engine of philo.
//
// A [Maker] owns the forks and the state shared by every philosopher: the
// [Ledger] of satisfied philosophers, the [Printer] that serialises the
// action stream and the [Termination] signal. It seats philosophers around
// a ring, philosopher i holding forks i-1 and i mod n, and starts each one
// as soon as it is seated.
//
// Every [Philosopher] runs two goroutines. The feeding loop takes its forks
// in the order chosen by a [Strategy], eats, releases them, sleeps and
// thinks, forever. The watchdog polls every PollInterval and ends the
// simulation when all philosophers have eaten RequiredFeeds times or when
// its philosopher has gone longer than TimeToDie without starting a meal.
//
// The first watchdog to seal the printer delivers the verdict; no action
// line is printed after that.
//
//	maker, term := dining.NewMaker(cfg, reporter)
//	if err := maker.StartSimulation(ctx); err != nil {
//	    return err
//	}
//	verdict, err := term.Wait(ctx)
package dining
