package realtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait - таймаут записи одного сообщения клиенту
	writeWait = 10 * time.Second
	// pongWait - максимальное ожидание pong от клиента
	pongWait = 60 * time.Second
	// pingPeriod - период отправки ping, должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize - ограничение на входящие сообщения от клиента
	maxMessageSize = 1024
)

// Client - одно WebSocket-подключение сотрудника
type Client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// HandleConnection регистрирует новое подключение и запускает его насосы чтения и записи
func (h *Hub) HandleConnection(conn *websocket.Conn) {
	client := &Client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, 32),
		hub:  h,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump вычитывает входящие сообщения. Канал односторонний - сервер только
// рассылает события, поэтому входящие данные отбрасываются, но чтение держит
// соединение живым и ловит его закрытие
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump отправляет события клиенту и поддерживает соединение ping-ами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
