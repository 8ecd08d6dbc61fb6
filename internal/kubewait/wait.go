// Package kubewait polls cluster state over client-go until workloads
// are ready. It replaces the fixed startup sleep older harnesses used: a
// single poll loop bounded by one overall timeout.
package kubewait

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

const pollInterval = 5 * time.Second

// Client polls pod state in the test cluster.
type Client struct {
	clientset kubernetes.Interface
}

func NewClient(clientset kubernetes.Interface) *Client {
	return &Client{clientset: clientset}
}

// NewClientFromKubeconfig builds a Client from a kubeconfig path. An
// empty path falls back to the standard loading rules ($KUBECONFIG,
// ~/.kube/config), which is where kind writes its context.
func NewClientFromKubeconfig(path string) (*Client, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		rules.ExplicitPath = path
	}
	cfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kubeconfig: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building clientset: %w", err)
	}
	return &Client{clientset: clientset}, nil
}

// PodsReady blocks until every pod matching selector in namespace is
// Running with condition Ready, and at least one pod matches. One overall
// timeout bounds the whole wait; there is no fixed pre-poll delay.
func (c *Client) PodsReady(ctx context.Context, namespace, selector string, timeout time.Duration) error {
	err := wait.PollUntilContextTimeout(ctx, pollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		pods, err := c.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{LabelSelector: selector})
		if err != nil {
			// Transient apiserver errors are part of cluster startup.
			zap.S().Debugf("listing pods %q: %v", selector, err)
			return false, nil
		}
		if len(pods.Items) == 0 {
			return false, nil
		}
		for i := range pods.Items {
			if !podReady(&pods.Items[i]) {
				return false, nil
			}
		}
		return true, nil
	})
	if err != nil {
		return fmt.Errorf("waiting for pods %q to be ready: %w", selector, err)
	}
	return nil
}

func podReady(pod *corev1.Pod) bool {
	if pod.Status.Phase != corev1.PodRunning {
		return false
	}
	for _, cond := range pod.Status.Conditions {
		if cond.Type == corev1.PodReady && cond.Status == corev1.ConditionTrue {
			return true
		}
	}
	return false
}
