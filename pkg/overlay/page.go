package overlay

// overlayPage is the scoreboard overlay. It polls /api/state once a second;
// the page owns the polling cadence, not the server.
const overlayPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Basketball Scoreboard</title>
<style>
  body { background: #111; color: #eee; font-family: "Helvetica Neue", Arial, sans-serif; text-align: center; }
  .board { display: inline-block; margin-top: 60px; padding: 30px 50px; background: #1c1c1c; border-radius: 12px; }
  .scores { font-size: 72px; font-weight: bold; }
  .scores .sep { color: #666; padding: 0 20px; }
  .teams { font-size: 20px; color: #999; letter-spacing: 2px; }
  .clock { font-size: 40px; margin-top: 10px; font-variant-numeric: tabular-nums; }
  .period { font-size: 22px; color: #f5a623; }
  .detail { margin-top: 16px; font-size: 16px; color: #bbb; }
  .possession { color: #4a90d9; }
  .final { color: #d0021b; font-size: 26px; margin-top: 12px; }
  .waiting { margin-top: 80px; font-size: 24px; color: #777; }
</style>
</head>
<body>
<div id="app" class="waiting">Waiting for game data&hellip;</div>
<script>
function render(s) {
  var app = document.getElementById('app');
  if (!s) {
    app.className = 'waiting';
    app.textContent = 'Waiting for game data…';
    return;
  }
  app.className = 'board';
  app.innerHTML =
    '<div class="teams">HOME &nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp; AWAY</div>' +
    '<div class="scores">' + s.homeScore + '<span class="sep">:</span>' + s.awayScore + '</div>' +
    '<div class="period">' + s.periodName + '</div>' +
    '<div class="clock">' + s.clock + '</div>' +
    '<div class="detail">Fouls ' + s.homeFouls + ' - ' + s.awayFouls +
    ' &middot; Timeouts ' + s.homeTimeouts + ' - ' + s.awayTimeouts +
    (s.possession !== 'None' ? ' &middot; <span class="possession">Possession: ' + s.possession + '</span>' : '') +
    '</div>' +
    (s.finished ? '<div class="final">FINAL</div>' : '');
}

function poll() {
  fetch('/api/state').then(function (resp) {
    if (resp.status === 204) { render(null); return; }
    return resp.json().then(render);
  }).catch(function () {});
}

poll();
setInterval(poll, 1000);
</script>
</body>
</html>
`
