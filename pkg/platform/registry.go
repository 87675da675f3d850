package platform

import (
	"fmt"
	"sync"

	"github.com/go-drift/uienv/pkg/errors"
)

type channelRegistry struct {
	mu             sync.RWMutex
	methodChannels map[string]*MethodChannel
	eventChannels  map[string]*EventChannel
}

var registry = &channelRegistry{
	methodChannels: make(map[string]*MethodChannel),
	eventChannels:  make(map[string]*EventChannel),
}

func (r *channelRegistry) registerMethod(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.methodChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) registerEvent(name string, ch *EventChannel) {
	r.mu.Lock()
	r.eventChannels[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) methodChannel(name string) *MethodChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.methodChannels[name]
}

func (r *channelRegistry) eventChannel(name string) *EventChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.eventChannels[name]
}

func (r *channelRegistry) events() []*EventChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*EventChannel, 0, len(r.eventChannels))
	for _, ch := range r.eventChannels {
		out = append(out, ch)
	}
	return out
}

// NativeBridge is the interface to native platform code.
type NativeBridge interface {
	// InvokeMethod calls a method on the native side.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)

	// StartEventStream asks native to start sending events for a channel.
	StartEventStream(channel string) error

	// StopEventStream asks native to stop sending events for a channel.
	StopEventStream(channel string) error
}

var (
	bridgeMu     sync.RWMutex
	nativeBridge NativeBridge
)

func currentBridge() NativeBridge {
	bridgeMu.RLock()
	defer bridgeMu.RUnlock()
	return nativeBridge
}

func bridgeAvailable() bool {
	return currentBridge() != nil
}

// SetNativeBridge installs the native bridge and starts the streams of
// channels that gained listeners before it was available. Start failures
// are delivered to those listeners' error handlers.
func SetNativeBridge(bridge NativeBridge) {
	bridgeMu.Lock()
	nativeBridge = bridge
	bridgeMu.Unlock()
	if bridge == nil {
		return
	}

	for _, ch := range registry.events() {
		ch.mu.Lock()
		start := len(ch.subscriptions) > 0 && !ch.started
		if start {
			ch.started = true
		}
		ch.mu.Unlock()

		if start {
			if err := startEventStream(ch.name); err != nil {
				ch.mu.Lock()
				ch.started = false
				ch.mu.Unlock()
				ch.dispatchError(err)
			}
		}
	}
}

func invokeNative(channel, method string, args any) (any, error) {
	bridge := currentBridge()
	if bridge == nil {
		return nil, ErrPlatformUnavailable
	}
	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}
	resultData, err := bridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Decode(resultData)
}

func startEventStream(channel string) error {
	return streamControl("platform.startEventStream", channel, NativeBridge.StartEventStream)
}

func stopEventStream(channel string) error {
	return streamControl("platform.stopEventStream", channel, NativeBridge.StopEventStream)
}

func streamControl(op, channel string, call func(NativeBridge, string) error) error {
	bridge := currentBridge()
	err := ErrPlatformUnavailable
	if bridge != nil {
		err = call(bridge, channel)
	}
	if err != nil {
		errors.Report(&errors.EnvError{
			Op:      op,
			Kind:    errors.KindPlatform,
			Channel: channel,
			Err:     err,
		})
	}
	return err
}

// HandleMethodCall is called by the bridge when native code invokes a Go
// method.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := registry.methodChannel(channel)
	if ch == nil {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channel)
	}
	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}
	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}
	return DefaultCodec.Encode(result)
}

// HandleEvent is called by the bridge when native code sends an event.
// A payload that does not decode is delivered to the listeners as an error.
func HandleEvent(channel string, eventData []byte) error {
	ch, err := lookupEventChannel("platform.HandleEvent", channel)
	if err != nil {
		return err
	}
	data, err := DefaultCodec.Decode(eventData)
	if err != nil {
		ch.dispatchError(err)
		return err
	}
	ch.dispatchEvent(data)
	return nil
}

// HandleEventError is called by the bridge when an event stream fails.
func HandleEventError(channel string, code, message string) error {
	ch, err := lookupEventChannel("platform.HandleEventError", channel)
	if err != nil {
		return err
	}
	ch.dispatchError(NewChannelError(code, message))
	return nil
}

// HandleEventDone is called by the bridge when an event stream ends.
func HandleEventDone(channel string) error {
	ch, err := lookupEventChannel("platform.HandleEventDone", channel)
	if err != nil {
		return err
	}
	ch.dispatchDone()
	return nil
}

func lookupEventChannel(op, channel string) (*EventChannel, error) {
	if ch := registry.eventChannel(channel); ch != nil {
		return ch, nil
	}
	err := fmt.Errorf("%w: %s", ErrChannelNotRegistered, channel)
	errors.Report(&errors.EnvError{
		Op:      op,
		Kind:    errors.KindPlatform,
		Channel: channel,
		Err:     err,
	})
	return nil, err
}

// ResetForTest clears the bridge, the dispatcher, every subscription and the
// settings state, so the package behaves as if freshly initialized. Only
// tests should call it.
func ResetForTest() {
	bridgeMu.Lock()
	nativeBridge = nil
	bridgeMu.Unlock()

	for _, ch := range registry.events() {
		ch.mu.Lock()
		ch.subscriptions = nil
		ch.started = false
		ch.mu.Unlock()
	}

	RegisterDispatch(nil)
	Settings.reset()
	resetListeners()
}
