package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/relayops/relayctl/internal/naming"
	"github.com/relayops/relayctl/internal/reconcile"
	"github.com/relayops/relayctl/internal/state"
)

// Phase is one ordered step of the deployment. Requires and Produces
// declare the state keys the phase reads and writes; a phase that reads a
// key no earlier phase has written fails with a missing-state error.
type Phase struct {
	Ordinal  int
	Name     string
	Requires []state.Key
	Produces []state.Key

	run func(ctx context.Context) error
}

// PhaseCount is the number of deployment phases.
const PhaseCount = 6

func (e *Engine) phases() []Phase {
	return []Phase{
		{
			Ordinal: 1,
			Name:    "base-network",
			Produces: []state.Key{
				state.KeyNetworkID, state.KeySubnetID, state.KeyFirewallID,
			},
			run: e.runBaseNetwork,
		},
		{
			Ordinal: 2,
			Name:    "identity",
			Produces: []state.Key{
				state.KeyServiceAccountARN, state.KeySecretName, state.KeySecretARN,
			},
			run: e.runIdentity,
		},
		{
			Ordinal:  3,
			Name:     "compute",
			Requires: []state.Key{state.KeySubnetID, state.KeyFirewallID},
			Produces: []state.Key{
				state.KeyInstanceID, state.KeyInstanceName, state.KeyInstanceZone,
				state.KeyInternalAddress, state.KeyExternalAddress,
			},
			run: e.runCompute,
		},
		{
			Ordinal: 4,
			Name:    "service-rollout",
			Requires: []state.Key{
				state.KeyInstanceID, state.KeySecretName, state.KeyExternalAddress,
			},
			Produces: []state.Key{state.KeyDeployedAt, state.KeyServiceURL},
			run:      e.runServiceRollout,
		},
		{
			Ordinal:  5,
			Name:     "observability",
			Requires: []state.Key{state.KeyInstanceID},
			run:      e.runObservability,
		},
		{
			Ordinal:  6,
			Name:     "verify",
			Requires: []state.Key{state.KeyServiceURL},
			run:      e.runVerify,
		},
	}
}

func (e *Engine) reconcile(ctx context.Context, d reconcile.Descriptor) (reconcile.Outcome, error) {
	outcome, err := reconcile.Reconcile(ctx, d)
	if err == nil {
		e.outcomes = append(e.outcomes, outcome)
	}
	return outcome, err
}

func (e *Engine) runBaseNetwork(ctx context.Context) error {
	network, err := e.reconcile(ctx, e.networkDescriptor())
	if err != nil {
		return err
	}
	vpcID := network.Attributes["id"]

	subnet, err := e.reconcile(ctx, e.subnetDescriptor(vpcID))
	if err != nil {
		return err
	}

	firewall, err := e.reconcile(ctx, e.firewallDescriptor(vpcID))
	if err != nil {
		return err
	}

	return e.store.Write(map[state.Key]string{
		state.KeyNetworkID:  vpcID,
		state.KeySubnetID:   subnet.Attributes["id"],
		state.KeyFirewallID: firewall.Attributes["id"],
	})
}

func (e *Engine) runIdentity(ctx context.Context) error {
	account, err := e.reconcile(ctx, e.serviceAccountDescriptor())
	if err != nil {
		return err
	}
	roleARN := account.Attributes["arn"]

	secret, err := e.reconcile(ctx, e.secretDescriptor())
	if err != nil {
		return err
	}
	prefix := e.cfg.NamePrefix()
	secretName := naming.Secret(prefix)
	secretARN := secret.Attributes["arn"]

	// Only a secret without live material gets a new credential; re-runs
	// must not rotate the credential of a working deployment. A container
	// left empty by an interrupted run is filled in here.
	needCredential := secret.Status == reconcile.StatusCreated
	if !needCredential {
		_, present, err := e.cloud.ReadCredential(ctx, secretName)
		if err != nil {
			return err
		}
		needCredential = !present
	}
	if needCredential {
		credential, err := newCredential()
		if err != nil {
			return err
		}
		if err := e.cloud.StoreCredential(ctx, secretName, credential); err != nil {
			return err
		}
	}

	if err := e.cloud.GrantSecretAccess(ctx, secretName, roleARN); err != nil {
		return err
	}

	accountID, region := e.cloud.Identity()
	logGroupARN := fmt.Sprintf("arn:aws:logs:%s:%s:log-group:%s",
		region, accountID, naming.LogGroup(prefix))
	roleName := naming.ServiceAccount(prefix)
	if err := e.cloud.AttachRuntimePolicy(ctx, roleName, secretARN, logGroupARN); err != nil {
		return err
	}

	return e.store.Write(map[state.Key]string{
		state.KeyServiceAccountARN: roleARN,
		state.KeySecretName:        secretName,
		state.KeySecretARN:         secretARN,
	})
}

func (e *Engine) runCompute(ctx context.Context) error {
	subnetID, err := e.store.Read(state.KeySubnetID)
	if err != nil {
		return err
	}
	firewallID, err := e.store.Read(state.KeyFirewallID)
	if err != nil {
		return err
	}

	if _, err := e.reconcile(ctx, e.diskDescriptor()); err != nil {
		return err
	}

	instance, err := e.reconcile(ctx, e.instanceDescriptor(subnetID, firewallID))
	if err != nil {
		return err
	}

	return e.store.Write(map[state.Key]string{
		state.KeyInstanceID:      instance.Attributes["id"],
		state.KeyInstanceName:    instance.Name,
		state.KeyInstanceZone:    instance.Attributes["zone"],
		state.KeyInternalAddress: instance.Attributes["internalIP"],
		state.KeyExternalAddress: instance.Attributes["externalIP"],
	})
}

func (e *Engine) runServiceRollout(ctx context.Context) error {
	instanceID, err := e.store.Read(state.KeyInstanceID)
	if err != nil {
		return err
	}
	secretName, err := e.store.Read(state.KeySecretName)
	if err != nil {
		return err
	}
	externalIP, err := e.store.Read(state.KeyExternalAddress)
	if err != nil {
		return err
	}

	_, region := e.cloud.Identity()
	conf, err := renderRelayConf(relayConfParams{
		Environment: e.cfg.Environment,
		Port:        e.cfg.ServicePort,
		Region:      region,
		SecretName:  secretName,
		LogGroup:    naming.LogGroup(e.cfg.NamePrefix()),
	})
	if err != nil {
		return err
	}

	if err := e.cloud.RunCommands(ctx, instanceID, rolloutCommands(conf, e.cfg.ServicePort)); err != nil {
		return fmt.Errorf("service rollout failed: %w", err)
	}

	return e.store.Write(map[state.Key]string{
		state.KeyDeployedAt: e.now().UTC().Format(time.RFC3339),
		state.KeyServiceURL: fmt.Sprintf("http://%s:%d", externalIP, e.cfg.ServicePort),
	})
}

func (e *Engine) runObservability(ctx context.Context) error {
	instanceID, err := e.store.Read(state.KeyInstanceID)
	if err != nil {
		return err
	}

	if _, err := e.reconcile(ctx, e.logMetricDescriptor()); err != nil {
		return err
	}
	if _, err := e.reconcile(ctx, e.alertPolicyDescriptor()); err != nil {
		return err
	}
	if _, err := e.reconcile(ctx, e.dashboardDescriptor(instanceID)); err != nil {
		return err
	}
	if _, err := e.reconcile(ctx, e.budgetDescriptor()); err != nil {
		return err
	}
	return nil
}

func (e *Engine) runVerify(ctx context.Context) error {
	serviceURL, err := e.store.Read(state.KeyServiceURL)
	if err != nil {
		return err
	}
	if err := e.prober(ctx, serviceURL+"/healthz"); err != nil {
		return fmt.Errorf("deployment verification failed: %w", err)
	}

	// Best effort: the probe already proved the service answers, so a
	// failed unit query is only informational.
	if instanceID, err := e.store.Read(state.KeyInstanceID); err == nil {
		if err := e.cloud.RunCommands(ctx, instanceID, []string{"systemctl is-active relay"}); err != nil {
			slog.Warn("service unit state query failed", "instance", instanceID, "error", err)
		}
	}
	return nil
}
