package e2e_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ledgerbot/ledger-bot/internal/config"
	"github.com/ledgerbot/ledger-bot/tests"
	"github.com/rs/zerolog"
)

const ledgerEventsTopic = "test.ledger.entries"

var (
	testServices        *TestServices
	globalTestContainer sync.Once
	srvcLock            sync.Mutex
)

type TestServices struct {
	Line     *mockLineServer
	Kafka    *mockKafkaServer
	Postgres *tests.TestContainer
	refs     atomic.Int64
	Settings config.Settings
}

func GetTestServices(t *testing.T) *TestServices {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	srvcLock.Lock()
	globalTestContainer.Do(func() {
		logger := zerolog.New(os.Stdout).Level(zerolog.WarnLevel)
		zerolog.DefaultContextLogger = &logger
		settings := config.Settings{
			Port:                   8080,
			MonPort:                9090,
			LineChannelAccessToken: "test-channel-access-token",
			TokenSigningKey:        "test-signing-key",
			LedgerBackend:          config.LedgerBackendPostgres,
			LedgerEventsTopic:      ledgerEventsTopic,
		}
		settings.ApplyDefaults()

		// Setup services
		testServices = &TestServices{
			Settings: settings,
		}
		var wg sync.WaitGroup
		waitForSetup(t, &wg, func(t *testing.T) {
			line := newMockLineServer()
			testServices.Line = line
			testServices.Settings.LineAPIURL = line.URL()
		})
		waitForSetup(t, &wg, func(t *testing.T) {
			kafka := setupMockKafkaServer(t)
			testServices.Kafka = kafka
			testServices.Settings.KafkaBrokers = kafka.GetBrokerAddress(t)
		})
		wg.Wait()
	})
	// every test holds a reference on the shared postgres container
	db := tests.SetupTestContainer(t)
	if testServices.Postgres == nil {
		testServices.Postgres = db
		testServices.Settings.DB = db.Settings
	}
	srvcLock.Unlock()
	testServices.TeardownIfLastTest(t)
	return testServices
}

func (tc *TestServices) TeardownIfLastTest(t *testing.T) {
	tc.refs.Add(1)
	t.Cleanup(func() {
		refs := tc.refs.Add(-1)
		if refs != 0 {
			return
		}
		tc.Line.Close()
		if err := tc.Kafka.Close(); err != nil {
			t.Logf("Error closing Kafka: %v", err)
		}
		// reset the onceSetup to allow the next test to run if this one is closed
		globalTestContainer = sync.Once{}
	})
}

func waitForSetup(t *testing.T, wg *sync.WaitGroup, setup func(*testing.T)) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		setup(t)
	}()
}
