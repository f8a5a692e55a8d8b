package avro

// RawOrderSchema describes one normalized seller-order row on the
// ingestion topic. Money fields travel as decimal strings so no
// precision is lost between producer and consumer.
const RawOrderSchema = `{
  "type": "record",
  "name": "RawOrderRecord",
  "namespace": "goshopsync.ingest",
  "fields": [
    {"name": "seq", "type": "string", "default": ""},
    {"name": "code", "type": "string"},
    {"name": "item_count", "type": "int", "default": 0},
    {"name": "customer", "type": "string", "default": ""},
    {"name": "amount", "type": "string", "default": "0"},
    {"name": "service_charge", "type": "string", "default": "0"},
    {"name": "final_price", "type": "string", "default": "0"},
    {"name": "delivery_status", "type": "string", "default": ""},
    {"name": "payment_status", "type": "string", "default": ""},
    {"name": "product_info", "type": "string", "default": ""},
    {"name": "options", "type": "string", "default": ""}
  ]
}`
