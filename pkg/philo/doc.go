// Package philo runs dining-philosophers simulations and can be embedded in
// other Go programs.
//
// # Basic Usage
//
//	cfg := philo.DefaultConfig()
//	cfg.Philosophers = 5
//	cfg.TimeToDie = 800 * time.Millisecond
//	cfg.TimeToEat = 200 * time.Millisecond
//	cfg.TimeToSleep = 200 * time.Millisecond
//	cfg.RequiredFeeds = 7
//
//	sim, err := philo.New(cfg, philo.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer sim.Close()
//
//	if err := sim.Start(ctx); err != nil {
//	    return err
//	}
//	verdict, err := sim.Wait(ctx)
//
// # Action Stream
//
// Every action a philosopher takes is passed to a [Reporter], one call at a
// time. The default reporter prints "<ms> philosopher <id> <action>" lines
// to stdout. After the verdict no further actions are reported.
//
// # Event Handling
//
// Implement [EventHandler] and pass it with [WithEventHandler] to observe
// lifecycle transitions, meals and the verdict.
//
// # Plugins
//
// A [Plugin] is initialized before the philosophers are seated and may end
// the simulation through PluginConfig.Stop. See plugins/stopfile.
package philo
