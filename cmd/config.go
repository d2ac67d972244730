package cmd

// Config carries everything the process needs from the environment: the HTTP
// port, database connection settings, the carrier API endpoint, and the
// auto-ship schedule.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	CarrierBaseURL        string
	CarrierTimeoutSeconds int
	PickupPostcode        string
	AutoShipSchedule      string
}
