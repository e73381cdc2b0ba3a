package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) readConfig(configPath string) error {
	c, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.Config = c
	log.Printf("Config: %d scenes, %d pixels at %g fps", len(c.Scenes), c.Strip.Pixels, c.Strip.FrameRate)
	return nil
}

func (a *app) tweenOptions(onOverwrite func(tween.OverwriteEvent)) tween.Options {
	return tween.Options{
		Logger:      log.Default(),
		Verbose:     a.Config.Verbose,
		OnOverwrite: onOverwrite,
	}
}

func (a *app) connect() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(client mqtt.Client) { log.Println("Connected") })
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// run streams the show to the LED controller over MQTT.
func (a *app) run() error {
	if err := a.connect(); err != nil {
		return err
	}
	defer a.Client.Disconnect(250)

	var onOverwrite func(tween.OverwriteEvent)
	if a.Config.Mqtt.Topics.Events != "" {
		onOverwrite = stream.NewEventPublisher(a.Client, a.Config.Mqtt.Topics.Events).Overwrite
	}
	controller, _, err := stream.NewShow(a.Config, a.tweenOptions(onOverwrite))
	if err != nil {
		return err
	}
	a.Controller = controller

	sink := stream.NewMqttSink(a.Client, a.Config.Mqtt.Topics.Stream)
	a.Streamer = stream.NewStreamer(a.Controller, sink, a.Config.Strip.FrameRate)

	if a.Config.Api.Listen != "" {
		server := api.NewApi(a.Streamer, a.Config.Api.Static)
		go func() {
			if err := server.Serve(a.Config.Api.Listen); err != nil {
				log.Printf("API stopped: %v", err)
			}
		}()
	}

	return a.Streamer.Run()
}

// preview plays the show in the terminal.
func (a *app) preview() error {
	controller, _, err := stream.NewShow(a.Config, a.tweenOptions(nil))
	if err != nil {
		return err
	}
	a.Controller = controller

	sink, err := stream.NewTerminalSink()
	if err != nil {
		return err
	}
	defer sink.Close()

	// The screen owns the terminal until the preview ends.
	log.SetOutput(io.Discard)
	defer log.SetOutput(os.Stderr)
	a.Streamer = stream.NewStreamer(a.Controller, sink, a.Config.Strip.FrameRate)
	return a.Streamer.Run()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
